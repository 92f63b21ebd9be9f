package sllist

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// Typed 在定长字节链表之上提供类型化访问
// T必须是encoding/binary能确定固定字节长度的类型，例如int32、float64、定长数组或只含定长字段的结构体
type Typed[T any] struct {
	list *SLList
}

// NewTyped 新建类型化链表，元素字节数由T的固定binary长度决定
// T不是定长类型时返回error
func NewTyped[T any]() (*Typed[T], error) {
	var zero T
	size := binary.Size(zero)
	if size < 0 {
		return nil, errors.New("sllist: element type has no fixed binary size")
	}
	return &Typed[T]{list: New(size)}, nil
}

func (t *Typed[T]) encode(v T) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, t.list.ElementSize()))
	_ = binary.Write(buf, binary.LittleEndian, v)
	return buf.Bytes()
}

func (t *Typed[T]) decode(payload []byte) T {
	var v T
	_ = binary.Read(bytes.NewReader(payload), binary.LittleEndian, &v)
	return v
}

func (t *Typed[T]) InsertFirst(v T) int {
	return t.list.InsertFirst(t.encode(v))
}

func (t *Typed[T]) InsertLast(v T) int {
	return t.list.InsertLast(t.encode(v))
}

func (t *Typed[T]) Insert(index int, v T) int {
	return t.list.Insert(index, t.encode(v))
}

func (t *Typed[T]) RemoveFirst() int {
	return t.list.RemoveFirst()
}

func (t *Typed[T]) RemoveLast() int {
	return t.list.RemoveLast()
}

func (t *Typed[T]) Remove(index int) int {
	return t.list.Remove(index)
}

func (t *Typed[T]) Length() int {
	return t.list.Length()
}

func (t *Typed[T]) Clear() {
	t.list.Clear()
}

// ForEach 按序遍历，visitor返回false停止遍历
func (t *Typed[T]) ForEach(visitor func(index int, v T) bool) {
	t.list.ForEach(func(index int, payload []byte) bool {
		return visitor(index, t.decode(payload))
	})
}

// Values 按序返回所有元素
func (t *Typed[T]) Values() []T {
	res := make([]T, 0, t.list.Length())
	t.list.ForEach(func(index int, payload []byte) bool {
		res = append(res, t.decode(payload))
		return true
	})
	return res
}
