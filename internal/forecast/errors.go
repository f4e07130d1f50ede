package forecast

import (
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a resolver failure.
type Kind string

const (
	KindInvalidCity         Kind = "invalid_city"
	KindServerMisconfigured Kind = "server_misconfigured"
	KindUpstreamError       Kind = "upstream_error"
	KindNoData              Kind = "no_data"
	KindMalformedUpstream   Kind = "malformed_upstream"
	KindNetworkError        Kind = "network_error"
)

// Error is the failure type returned by Service.Resolve. HTTPStatus is the
// status the handler responds with; Label and Message fill the error and
// message fields of the JSON envelope; Details carries the upstream body when
// one exists.
type Error struct {
	Kind       Kind
	HTTPStatus int
	Label      string
	Message    string
	Details    string
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newInvalidCityError(input string) *Error {
	return &Error{
		Kind:       KindInvalidCity,
		HTTPStatus: http.StatusBadRequest,
		Label:      "無效的城市 ID",
		Message:    fmt.Sprintf("無效的城市 ID: %s。有效的城市 ID: %s", input, strings.Join(ValidCityIDs(), ", ")),
	}
}

func newServerMisconfiguredError() *Error {
	return &Error{
		Kind:       KindServerMisconfigured,
		HTTPStatus: http.StatusInternalServerError,
		Label:      "伺服器設定錯誤",
		Message:    "伺服器未設定氣象資料 API 金鑰，請聯絡管理員",
	}
}

func newUpstreamError(statusCode int, body string) *Error {
	return &Error{
		Kind:       KindUpstreamError,
		HTTPStatus: statusCode,
		Label:      "氣象資料服務錯誤",
		Message:    "氣象資料服務回應異常",
		Details:    body,
	}
}

func newNoDataError(locationName string) *Error {
	return &Error{
		Kind:       KindNoData,
		HTTPStatus: http.StatusNotFound,
		Label:      "查無資料",
		Message:    fmt.Sprintf("找不到 %s 的天氣資料", locationName),
	}
}

func newMalformedUpstreamError(elementName string, got, want int) *Error {
	return &Error{
		Kind:       KindMalformedUpstream,
		HTTPStatus: http.StatusBadGateway,
		Label:      "氣象資料格式錯誤",
		Message:    "氣象資料服務回傳的資料格式不符預期",
		cause:      fmt.Errorf("weather element %s has %d time entries, want %d", elementName, got, want),
	}
}

func newNetworkError(cause error) *Error {
	return &Error{
		Kind:       KindNetworkError,
		HTTPStatus: http.StatusInternalServerError,
		Label:      "伺服器錯誤",
		Message:    "無法取得天氣資料，請稍後再試",
		cause:      cause,
	}
}
