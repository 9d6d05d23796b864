package types

type ToastKind string

const (
	ToastInfo    ToastKind = "info"
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

func (k ToastKind) Valid() bool {
	switch k {
	case ToastInfo, ToastSuccess, ToastError:
		return true
	default:
		return false
	}
}

type Toast struct {
	ID      int64     `json:"id"`
	Kind    ToastKind `json:"kind"`
	Message string    `json:"message"`
}
