package models

import "os"

// Category tags. Tags are emitted verbatim in the analysis output, so they
// stay in Portuguese to match the statement language.
const (
	CategoryBills     = "contas"
	CategoryDining    = "restaurantes"
	CategoryGroceries = "mercado"
	CategoryShopping  = "compras"
	CategoryTransport = "transporte"
	CategoryHealth    = "saúde"
	CategoryLeisure   = "lazer"
	CategoryEducation = "educação"
	CategoryTransfers = "transferências"
	CategoryOther     = "outros"
)

// Recommendation priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// File permissions
const (
	PermissionConfigFile os.FileMode = 0600
	PermissionDirectory  os.FileMode = 0750
	PermissionReportFile os.FileMode = 0644
)
