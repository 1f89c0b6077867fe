// Command protmotifd serves the protmotif HTTP API. It stores submitted
// proteins with their fragments, predicted structure and motifs, and answers
// ad-hoc analysis requests.
//
// # HTTP API
//
// Every /api route requires an X-User-ID header naming a user created with
// "protmotif user add"; requests without one get 401.
//
//	POST /api/proteins
//	    Submit {sequence, name?, description?}. The sequence is fragmented
//	    into 15-residue windows every 5 residues; each window is stored with
//	    its structure prediction and motifs in one transaction. 201.
//
//	POST /api/proteins/sequence
//	    Submit a plain-text sequence with a generated name. 201.
//
//	GET /api/proteins?limit=&offset=&sort=field[:asc|desc]
//	    Page through proteins, newest first by default.
//
//	GET /api/proteins/search?name=&motif=&molecularWeight[op]=&sequenceLength[op]=
//	    Filter proteins; op is one of gt, gte, lt, lte, eq. On PostgreSQL
//	    motif is a case-insensitive regular expression over stored motif
//	    patterns; on SQLite it is a case-insensitive substring, so regex
//	    metacharacters match literally.
//
//	GET|PUT|DELETE /api/proteins/{id}
//	    Fetch, rename or redescribe, or delete a protein with its fragments.
//
//	GET /api/proteins/{id}/fragments
//	GET /api/fragments/{id}
//	    Fragments with structure classes, confidences and motifs.
//
//	GET /api/proteins/{id}/sequence
//	    Sequence rebuilt from the fragments; text/plain or JSON, with ETag.
//
//	GET /api/proteins/{id}/structure
//	    Structure of the rebuilt sequence as JSON or image/svg+xml.
//
//	POST /api/analysis/structure
//	POST /api/analysis/motifs
//	    Ad-hoc analysis of a plain-text sequence; nothing is stored.
//
//	GET /files/proteins/{id}.json
//	    Snapshots written by "protmotif export". The rest of the data
//	    directory, including the SQLite database, is not served.
//
//	GET /healthz
//	    Liveness; pings the database.
//
// Behaviour
//
//   - Errors are JSON {"error": "..."}: 400 for invalid input, 404 for
//     missing records, 409 for conflicts and 500 otherwise.
//   - Each request is logged with method, path, status, bytes and duration.
//   - The default listen address is :3000 and the default database is
//     SQLite under ./data. Setting PG_HOST switches to PostgreSQL.
package main
