package handler

// Export for testing
type ErrorResponse = errorResponse
type ValidateKeyResponse = validateKeyResponse
type ExtractionResponse = extractionResponse
type OCRResponse = ocrResponse
type RateLimitInfo = rateLimitInfo
type BatchItemResponse = batchItemResponse
type BatchResponse = batchResponse
type ResultListResponse = resultListResponse
type RateLimitStatusResponse = rateLimitStatusResponse
type HealthResponse = healthResponse

var WriteServiceError = writeServiceError
var WriteError = writeError
