// Package publish exports a site of rendered pages to static files.
//
// A Site maps routes to page functions. A Publisher renders each route
// and writes the result through a Store, which may target the local
// filesystem (DiskStore) or an S3 bucket (S3Store). Routes map to clean
// URLs: "/" becomes index.html and "/about" becomes about/index.html.
package publish
