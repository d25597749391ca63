package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct so route
// registration stays in one place.
type HandlerBundle struct {
	// Request engine endpoints.
	InitiateSession     gin.HandlerFunc
	GetSession          gin.HandlerFunc
	SelectCategory      gin.HandlerFunc
	ToggleOffering      gin.HandlerFunc
	UpdateDetails       gin.HandlerFunc
	ApplyBundle         gin.HandlerFunc
	StageSession        gin.HandlerFunc
	UnstageSession      gin.HandlerFunc
	ConfirmSession      gin.HandlerFunc
	CancelSession       gin.HandlerFunc
	CreateDepositIntent gin.HandlerFunc

	// Catalog endpoints.
	ListOfferings gin.HandlerFunc
	ListBundles   gin.HandlerFunc

	// Smart link endpoints.
	CreateSmartLink    gin.HandlerFunc
	GetSmartLink       gin.HandlerFunc
	UpdateSmartLink    gin.HandlerFunc
	DeleteSmartLink    gin.HandlerFunc
	AddLinkButton      gin.HandlerFunc
	ReorderLinkButtons gin.HandlerFunc
	DeleteLinkButton   gin.HandlerFunc
	TrackButtonClick   gin.HandlerFunc
}
