package dllist

//go:generate mockgen -destination ../mocks/dllist_mocks.go -package mocks -mock_names Allocator=AllocatorMock,Random=RandomMock github.com/sirkon/ranklist/internal/dllist Allocator,Random
