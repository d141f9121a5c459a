package http

// UserIDParam is the chi URL parameter carrying the user id.
const UserIDParam = "userID"

// TypeQueryParam is the optional transaction type filter on the log endpoint.
const TypeQueryParam = "type"
