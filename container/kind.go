package container

import "fixturegen/internal/common"

type Kind int

const (
	KindNone Kind = iota
	KindList
	KindSet
	KindQueue
	KindHashMap
	KindSortedMap
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindQueue:
		return "queue"
	case KindHashMap:
		return "hash map"
	case KindSortedMap:
		return "sorted map"
	default:
		return common.UnknownStr
	}
}

func (k Kind) IsCollection() bool {
	switch k {
	default:
		return false
	case KindList, KindSet, KindQueue:
		return true
	}
}

func (k Kind) IsMap() bool {
	switch k {
	default:
		return false
	case KindHashMap, KindSortedMap:
		return true
	}
}
