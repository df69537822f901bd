// Package server exposes the pipeline stages as a small JSON playground API.
//
// # Endpoints
//
//	GET  /healthz       liveness check
//	POST /v1/reconcile  {"from": doc, "to": doc, "format": "text", "detailed": false}
//	POST /v1/pack       {"columns": 12, "width": 375, "spacing": 0, "tiles": ["wide", "6x5"]}
//	POST /v1/layout     {"snapshot": doc, "width": 375, "height": 667, "config": {...}}
//
// Snapshot documents use the JSON format of package io. Reconcile responses
// for the text and json formats are JSON objects carrying the edit script;
// the dot, svg, png and pdf formats return the rendered diagram with the
// matching content type.
//
// Errors are returned as {"error": message, "code": code} with status 400
// for invalid input and 500 otherwise. Every response carries an X-Cache
// header ("hit" or "miss") when the stage consulted the cache.
package server
