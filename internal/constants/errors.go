package constants

// 공통 오류 메시지
const (
	// 입력 형식 오류
	ErrInvalidBody = "요청 본문 형식이 올바르지 않습니다"
	ErrInvalidID   = "유효하지 않은 ID입니다"

	// 필드 검증 오류
	ErrInvalidHomepage = "유효하지 않은 homepage 값입니다"
	ErrInvalidCategory = "유효하지 않은 category 값입니다"
	ErrTitleRequired   = "title을 입력해주세요"
	ErrContentRequired = "content를 입력해주세요"
	ErrInvalidDate     = "created_at이 유효한 날짜가 아닙니다"
	ErrNoUpdateFields  = "변경할 필드를 한 가지 이상 포함해주세요"

	// 조회 오류
	ErrNoticeNotFound = "공지를 찾을 수 없습니다"

	// 인증/설정 오류
	ErrAdminUnauthorized  = "관리자 인증에 실패했습니다"
	ErrServiceCredentials = "서비스 자격 증명이 설정되지 않았습니다"

	// 저장소 오류
	ErrListFailed   = "공지 목록을 불러오지 못했습니다"
	ErrGetFailed    = "공지를 불러오지 못했습니다"
	ErrCreateFailed = "공지 등록에 실패했습니다"
	ErrUpdateFailed = "공지 수정에 실패했습니다"
	ErrDeleteFailed = "공지 삭제에 실패했습니다"
)

// 성공 메시지
const (
	SuccessDelete = "공지가 삭제되었습니다"
)
