// package ytmusic is an authenticated client for the YouTube Music private
// web API, bound to headers captured from a user's browser session.
//
// Construction validates the credential material structurally and performs no
// network I/O; invalid-but-present credentials surface on first use. Every
// request recomputes the SAPISIDHASH authorization value the way the web
// client does, from the SAPISID cookie and the request origin.
package ytmusic
