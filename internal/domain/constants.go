package domain

// Политики бронирования по умолчанию (переопределяются секцией [booking] конфига)
const (
	DefaultDurationMinutes        = 120
	DefaultMaxAdvanceDays         = 30
	DefaultAutoCancelGraceMinutes = 15
	DefaultTierThreshold          = 10
	DefaultAutoConfirmRatio       = 0.5
	DefaultCodeMaxAttempts        = 10
)

// Правила автоматической блокировки клиента
const (
	AutoBlacklistNoShows       = 2
	AutoBlacklistCancellations = 3
	MinBlacklistReasonLength   = 5
)

// Подбор альтернативного времени
const MaxAlternativeSuggestions = 3

// AlternativeSlotOffsets смещения (в минутах) от запрошенного времени, в порядке проверки
var AlternativeSlotOffsets = []int{-60, -30, 30, 60, 90, 120}

// Код бронирования: без визуально похожих I, O, 0, 1
const (
	BookingCodeLength   = 6
	BookingCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Ограничения входных данных
const (
	MinPartySize          = 1
	MaxPartySize          = 50
	MinDurationMinutes    = 15
	MaxDurationMinutes    = 720
	MaxNotesLength        = 1000
	MaxCancelReasonLength = 500
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
