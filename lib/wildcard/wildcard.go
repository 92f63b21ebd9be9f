package wildcard

import (
	"errors"
	"regexp"
	"strings"
)

// Pattern 表示一个通配符模式，*匹配任意字符序列，?匹配单个字符，[...]为字符组
type Pattern struct {
	exp *regexp.Regexp
}

// CompilePattern 把通配符模式编译为Pattern
func CompilePattern(src string) (*Pattern, error) {
	sb := strings.Builder{}
	sb.WriteByte('^')
	for i := 0; i < len(src); i++ {
		ch := src[i]
		switch ch {
		case '\\':
			if i == len(src)-1 {
				return nil, errors.New("pattern ends with escape")
			}
			sb.WriteString(regexp.QuoteMeta(string(src[i+1])))
			i++ // skip escaped character
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteByte('.')
		case '[', ']':
			// 字符组原样保留
			sb.WriteByte(ch)
		default:
			sb.WriteString(regexp.QuoteMeta(string(ch)))
		}
	}
	sb.WriteByte('$')
	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, err
	}
	return &Pattern{exp: re}, nil
}

func (p *Pattern) IsMatch(s string) bool {
	return p.exp.MatchString(s)
}
