package sllist

// Allocator 负责payload缓冲区的分配和回收
// Alloc返回nil表示分配失败，插入操作会整体放弃，不会留下半构造的节点
// 每个payload只会被Free一次，要么在移除节点时，要么在Clear时
type Allocator interface {
	Alloc(size int) []byte
	Free(buf []byte)
}

type heapAllocator struct{}

func (heapAllocator) Alloc(size int) []byte {
	return make([]byte, size)
}

func (heapAllocator) Free(buf []byte) {}

var defaultAllocator Allocator = heapAllocator{}
