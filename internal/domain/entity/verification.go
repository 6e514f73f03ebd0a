package entity

// Verdict — итоговое решение по запросу.
type Verdict string

const (
	VerdictMatch    Verdict = "MATCH CONFIRMED"
	VerdictMismatch Verdict = "MISMATCH DETECTED"
)

// IsMatch сообщает, подтверждено ли совпадение.
func (v Verdict) IsMatch() bool {
	return v == VerdictMatch
}

// Outcome показывает, каким путём сравнение получило свой результат.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"       // расчёт выполнен
	OutcomeNoInput  Outcome = "no-input" // нет одного из изображений, сравнение провалено
	OutcomeFallback Outcome = "fallback" // расчёт не удался, совпадение принято по умолчанию
	// сборка без OpenCV: сравнение невозможно и считается проваленным
	OutcomeUnavailable Outcome = "unavailable"
)

// Причины, по которым QR-код не найден.
const (
	SymbolNoImage  = "No Image"
	SymbolSkipped  = "Skipped"
	SymbolNotFound = "No QR Found"
	SymbolError    = "Error"
)

// ShapeResult — результат сравнения по ключевым точкам.
type ShapeResult struct {
	Passed  bool
	Matches int // число надёжных соответствий
	Outcome Outcome
}

// ColorResult — результат сравнения цветовых гистограмм.
type ColorResult struct {
	Passed  bool
	Score   float64 // корреляция гистограмм, 1 — одинаковое распределение
	Outcome Outcome
}

// SymbolResult — результат поиска QR-кода. Если код не найден, Data содержит причину.
type SymbolResult struct {
	Found bool
	Data  string
}

// Report хранит итог проверки вместе с тремя частными результатами.
type Report struct {
	Shape   ShapeResult
	Color   ColorResult
	Symbol  SymbolResult
	Verdict Verdict
}
