package sllist

import "io"

// Visitor 遍历list
// 接收index和payload作为参数，返回true继续遍历，false停止遍历
type Visitor func(index int, payload []byte) bool

// Display 由调用方提供，把一个元素的payload格式化为要输出的字符串
// 引擎本身不解释payload的内容
type Display func(payload []byte) string

// Terminator 打印遍历在最后一个元素之后输出的结束标记，空链表也会输出
const Terminator = "NULL"

// List 定义了定长元素单链表支持的操作
// 所有修改操作返回1表示执行成功，返回0表示没有执行任何操作
type List interface {
	InsertFirst(data []byte) int        // 在表头插入元素
	InsertLast(data []byte) int         // 在表尾插入元素
	Insert(index int, data []byte) int  // 在指定位置插入元素，index超过当前长度时不插入
	RemoveFirst() int                   // 移除表头元素
	RemoveLast() int                    // 移除表尾元素
	Remove(index int) int               // 移除指定位置元素，index越界时不移除
	Length() int                        // 返回链表长度
	ElementSize() int                   // 返回每个元素占用的字节数
	ForEach(visitor Visitor)            // 按序遍历元素
	PrintTo(w io.Writer, display Display) // 打印遍历，最后输出Terminator
	Clear()                             // 释放所有节点
}

// New 对外提供的新建list函数，elemSize为每个元素占用的字节数
// elemSize为0时允许，节点payload为空
func New(elemSize int) *SLList {
	return newSLList(elemSize, defaultAllocator)
}

// NewWithAllocator 使用给定的Allocator新建list，用于需要控制payload分配的场景
func NewWithAllocator(elemSize int, alloc Allocator) *SLList {
	if alloc == nil {
		alloc = defaultAllocator
	}
	return newSLList(elemSize, alloc)
}
