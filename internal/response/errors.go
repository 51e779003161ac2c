package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Upload ────────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"
	ErrEmptyWorkbook   ErrCode = "EMPTY_WORKBOOK"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "입력값 검증에 실패했습니다. 요청 내용을 확인해 주세요."
	case ErrInvalidID:
		return "ID 형식이 올바르지 않습니다."
	case ErrInvalidPayload:
		return "요청 본문이 올바르지 않습니다."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "요청한 자료를 찾을 수 없습니다."
	case ErrConflict:
		return "이미 존재하는 자료입니다."

	// ─── Upload ────────────────────────────────────────────────────────
	case ErrFileRequired:
		return "업로드할 파일이 필요합니다."
	case ErrUnsupportedFile:
		return "지원하지 않는 파일 형식입니다. (.xlsx만 가능)"
	case ErrFileTooLarge:
		return "파일 크기가 허용 한도를 초과했습니다."
	case ErrEmptyWorkbook:
		return "통합문서에 읽을 수 있는 행이 없습니다."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "서버 내부 오류가 발생했습니다."
	default:
		return "예상하지 못한 오류가 발생했습니다."
	}
}
