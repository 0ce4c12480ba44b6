// Package common contains shared constants and sentinel errors used across
// Droply components.
package common

// AccessTokenHeaderName is the HTTP header key used to carry the access
// token on inbound requests.
const AccessTokenHeaderName = "access_token"

// MaxUploadSize is the payload ceiling for a single file upload, in bytes.
const MaxUploadSize = 5 * 1024 * 1024
