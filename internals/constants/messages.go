package constants

const (
	MsgSuccess = "Sukses"
	MsgFailed  = "Gagal"

	MsgValidationError = "Validasi error"
	MsgRegistered      = "Registrasi berhasil"
	MsgLoginSuccess    = "Login berhasil"
	MsgLoginFailed     = "Email atau password anda salah"
	MsgLogoutSuccess   = "Logout berhasil"
	MsgUnauthenticated = "Unauthenticated."
	MsgUnauthorized    = "Unauthorized."
	MsgTooManyRequests = "Terlalu banyak permintaan. Silakan coba lagi nanti."

	MsgData         = "Data"
	MsgDetail       = "Detail data"
	MsgCreated      = "Data berhasil dibuat"
	MsgCreateFailed = "Data gagal dibuat"
	MsgUpdated      = "Data berhasil diubah"
	MsgUpdateFailed = "Data gagal diubah"
	MsgDeleted      = "Data berhasil dihapus"
	MsgDeleteFailed = "Data gagal dihapus"
	MsgNotFound     = "Data tidak ditemukan"
	MsgFeedNotFound = "Data feed tidak ditemukan"
)
