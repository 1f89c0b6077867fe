// Package api serves the protein HTTP API.
//
// Every /api route requires an X-User-ID header naming a known user. Error
// kinds map to statuses in one place (writeError): validation 400, not found
// 404, conflict 409, anything else 500 with a generic body. /files/proteins/
// serves exported snapshots and nothing else from the data directory.
// /healthz pings the database.
package api
