package cctx

type ContextKey string

var (
	RunID ContextKey = "rm:run"
)
