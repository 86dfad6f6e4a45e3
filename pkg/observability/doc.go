/*
Package observability provides tools for monitoring the toast engine.

It includes Prometheus collectors fed by machine lifecycle hooks and a hook
set that writes every lifecycle transition to a structured logger.
*/
package observability
