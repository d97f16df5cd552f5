package v1

// URIID is the id path parameter of a resource.
type URIID struct {
	ID int64 `uri:"id" binding:"required"` // ID of the resource
}
