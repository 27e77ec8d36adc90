// Package v1 implements the v1 API of the ledger backend.
package v1

import (
	ledger_uuid "github.com/dompetku/backend/internal/uuid"
)

type URIID struct {
	ID ledger_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
