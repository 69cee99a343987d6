// Package page holds the benchmark payload served by every variant.
package page

// ContentType is sent with every payload response.
const ContentType = "text/html; charset=utf-8"

// Body is immutable; handlers may share it across connections without copying.
var Body = []byte("<!DOCTYPE html><html><body><h1>Hello World</h1></body></html>")
