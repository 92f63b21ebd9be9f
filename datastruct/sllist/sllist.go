package sllist

import "io"

// SLList 定长元素单链表，每个节点保存elemSize字节的独立payload副本
type SLList struct {
	head     *node
	elemSize int
	alloc    Allocator
}

type node struct {
	payload []byte
	next    *node
}

func newSLList(elemSize int, alloc Allocator) *SLList {
	if elemSize < 0 {
		elemSize = 0
	}
	return &SLList{
		head:     nil,
		elemSize: elemSize,
		alloc:    alloc,
	}
}

// newNode 分配新节点并把data拷贝进payload，data不足elemSize的部分补0
// 分配失败返回nil
func (l *SLList) newNode(data []byte) *node {
	buf := l.alloc.Alloc(l.elemSize)
	if buf == nil && l.elemSize > 0 {
		return nil
	}
	copy(buf, data)
	return &node{payload: buf}
}

// releaseNode 归还payload并断开链接
func (l *SLList) releaseNode(n *node) {
	l.alloc.Free(n.payload)
	n.payload = nil
	n.next = nil // for Go garbage collection
}

func (l *SLList) InsertFirst(data []byte) int {
	if l == nil || data == nil {
		return 0
	}
	n := l.newNode(data)
	if n == nil {
		return 0
	}
	n.next = l.head
	l.head = n
	return 1
}

func (l *SLList) InsertLast(data []byte) int {
	if l == nil || data == nil {
		return 0
	}
	n := l.newNode(data)
	if n == nil {
		return 0
	}
	if l.head == nil {
		l.head = n
		return 1
	}
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
	return 1
}

// Insert index从0开始，index等于当前长度时等价于InsertLast
// index大于当前长度时不插入，不做截断处理
func (l *SLList) Insert(index int, data []byte) int {
	if l == nil || data == nil || index < 0 {
		return 0
	}
	if index == 0 {
		return l.InsertFirst(data)
	}
	cur := l.head
	for i := 0; i < index-1; i++ {
		if cur == nil {
			return 0
		}
		cur = cur.next
	}
	if cur == nil {
		return 0
	}
	n := l.newNode(data)
	if n == nil {
		return 0
	}
	n.next = cur.next
	cur.next = n
	return 1
}

func (l *SLList) RemoveFirst() int {
	if l == nil || l.head == nil {
		return 0
	}
	n := l.head
	l.head = n.next
	l.releaseNode(n)
	return 1
}

func (l *SLList) RemoveLast() int {
	if l == nil || l.head == nil {
		return 0
	}
	if l.head.next == nil {
		n := l.head
		l.head = nil
		l.releaseNode(n)
		return 1
	}
	cur := l.head
	for cur.next.next != nil {
		cur = cur.next
	}
	n := cur.next
	cur.next = nil
	l.releaseNode(n)
	return 1
}

// Remove index为0时等价于RemoveFirst，index处没有节点时不移除
func (l *SLList) Remove(index int) int {
	if l == nil || l.head == nil || index < 0 {
		return 0
	}
	if index == 0 {
		return l.RemoveFirst()
	}
	cur := l.head
	for i := 0; i < index-1; i++ {
		if cur.next == nil {
			return 0
		}
		cur = cur.next
	}
	n := cur.next
	if n == nil {
		return 0
	}
	cur.next = n.next
	l.releaseNode(n)
	return 1
}

// Length 每次调用都完整遍历计数，长度不做缓存
func (l *SLList) Length() int {
	if l == nil {
		return 0
	}
	length := 0
	for cur := l.head; cur != nil; cur = cur.next {
		length++
	}
	return length
}

func (l *SLList) ElementSize() int {
	if l == nil {
		return 0
	}
	return l.elemSize
}

func (l *SLList) ForEach(visitor Visitor) {
	if l == nil || visitor == nil {
		return
	}
	idx := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if !visitor(idx, cur.payload) {
			break
		}
		idx++
	}
}

// PrintTo 按序对每个元素调用display并把结果写入w，最后写入Terminator
// 空链表只写入Terminator
func (l *SLList) PrintTo(w io.Writer, display Display) {
	if w == nil {
		return
	}
	if l != nil && display != nil {
		for cur := l.head; cur != nil; cur = cur.next {
			_, _ = io.WriteString(w, display(cur.payload))
		}
	}
	_, _ = io.WriteString(w, Terminator)
}

// Clear 释放所有节点的payload并清空链表，每个payload只释放一次
func (l *SLList) Clear() {
	if l == nil {
		return
	}
	cur := l.head
	for cur != nil {
		next := cur.next
		l.releaseNode(cur)
		cur = next
	}
	l.head = nil
}
