package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "実体参照をデコードする", in: `ООО &quot;Ромашка&quot;`, want: `ООО "Ромашка"`},
		{name: "タグを取り除く", in: "<highlighttext>Golang</highlighttext> developer", want: "Golang developer"},
		{name: "空白を圧縮する", in: "  Senior \n Go  ", want: "Senior Go"},
		{name: "そのままの文字列", in: "Python разработчик", want: "Python разработчик"},
		{name: "空文字", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}
