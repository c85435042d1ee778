// Package queue implements the unbounded lock-free multi-producer
// multi-consumer FIFO that connects producers to a shard's consumer.
//
// The design follows the FAA-array family of queues: a linked list of
// fixed-size nodes (2048 slots each) where producers claim slots with
// a fetch-and-add on the node's enqueue index and consumers claim them
// with a fetch-and-add on the dequeue index. A push retries only when a
// consumer poisoned its claimed slot first or when the tail node is
// full and a fresh node has to be linked by CAS, so pushes are
// wait-free in the common case and lock-free overall. 2048 slots
// per node is the trade-off point between allocator pressure (one node
// allocation per 2048 pushes) and cache locality.
//
// A consumed node becomes unreachable once every consumer has advanced
// its head pointer past it; the Go garbage collector then reclaims it.
// That is exactly the guarantee an epoch-based reclamation scheme
// provides in manually managed implementations: a retired node is
// freed only after no thread can still observe it.
package queue
