package starlex

import "sync"

// internTable is a process-wide, sharded, concurrency-safe string interner
// for identifiers (keywords are not interned). A monotonically growing pool is acceptable
// since identifiers in real programs are a bounded, small set; a
// read-mostly map guarded by a striped set of mutexes keeps contention low
// when many Lexer values run concurrently across goroutines.
const internShards = 32

type internShard struct {
	mu   sync.RWMutex
	strs map[string]string
}

type internTable struct {
	shards [internShards]*internShard
}

func newInternTable() *internTable {
	t := &internTable{}
	for i := range t.shards {
		t.shards[i] = &internShard{strs: make(map[string]string)}
	}
	return t
}

func (t *internTable) shardFor(s string) *internShard {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return t.shards[h%internShards]
}

// Intern returns the canonical string equal to s, inserting s if this is
// the first time it has been seen.
func (t *internTable) Intern(s string) string {
	shard := t.shardFor(s)
	shard.mu.RLock()
	if canon, ok := shard.strs[s]; ok {
		shard.mu.RUnlock()
		return canon
	}
	shard.mu.RUnlock()

	shard.mu.Lock()
	defer shard.mu.Unlock()
	if canon, ok := shard.strs[s]; ok {
		return canon
	}
	shard.strs[s] = s
	return s
}

// identInterner is the default process-wide pool shared by every Lexer,
// mirroring the single static Interner in the reference implementation.
var identInterner = newInternTable()
