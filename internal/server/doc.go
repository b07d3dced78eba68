// package server exposes the proxy function over HTTP.
//
// The hosting platform routes invocations to POST /v1/invoke with the
// requesting user's identity in the X-Reverbify-User header; the body carries
// the action payload. Handlers always answer with the uniform envelope from
// the function package.
package server
