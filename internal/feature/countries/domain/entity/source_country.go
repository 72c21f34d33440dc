package entity

// SourceCountry は外部国データソースから取得した1件分の生データです。
// 永続化前の中間表現で、通貨はコードのリストのまま保持します。
type SourceCountry struct {
	Name          string
	Capital       string
	Region        string
	Population    int64
	FlagURL       string
	CurrencyCodes []string
}
