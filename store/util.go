package store

import "strconv"

// parseInt 解析字节数组字符串为10进制整数
func parseInt(arg []byte) (int, error) {
	return strconv.Atoi(string(arg))
}
