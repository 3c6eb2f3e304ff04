package tablecache


//============================================= Stats


// Stats
//	Per-width allocation counters. The reference C cache only tracks these
//	behind a WITH_TABLE_CACHE_STATS build tag; this port keeps them on
//	unconditionally since they are a handful of int64 increments and the
//	teacher's own MMCMapNodePool likewise always tracks Size/MaxSize rather
//	than gating it behind a build flag.
type Stats struct {
	ChunksAllocated int64
	TablesCarved    int64
	FreelistHits    int64
	TablesFreed     int64
}
