package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldColumns         = "columns"
	FieldDurationMs      = "duration-ms"
	FieldFeatureCount    = "feature-count"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldListenAddress   = "listen-address"
	FieldPath            = "path"
	FieldPrice           = "price"
	FieldRequestBody     = "request-body"
	FieldRequestBytes    = "request-bytes"
	FieldResponseBody    = "response-body"
	FieldResponseBytes   = "response-bytes"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldRows            = "rows"
	FieldStack           = "stack"
	FieldStage           = "stage"
	FieldTraceID         = "trace-id"
)
