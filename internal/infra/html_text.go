package infra

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText は求人APIが返す文字列からHTMLタグを取り除き、実体参照をデコードしたテキストを返します。
//
// 使用例:
//
//   - 実体参照のデコード: PlainText(`ООО &quot;Ромашка&quot;`)
//     出力: `ООО "Ромашка"`
//
//   - ハイライトタグの除去: PlainText("<highlighttext>Golang</highlighttext> developer")
//     出力: "Golang developer"
//
//   - 連続した空白の圧縮: PlainText("  Senior \n Go  ")
//     出力: "Senior Go"
//
// タグも実体参照も含まない文字列は空白の圧縮のみ行います。
func PlainText(s string) string {
	if strings.ContainsAny(s, "<&") {
		document, err := goquery.NewDocumentFromReader(strings.NewReader(s))
		if err == nil {
			s = document.Text()
		}
	}
	return strings.Join(strings.Fields(s), " ")
}
