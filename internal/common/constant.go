package common

// AuthorizationHeader is the HTTP header used to carry the session token on
// outbound requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix is prepended to the token inside the authorization header.
const BearerPrefix = "Bearer "
