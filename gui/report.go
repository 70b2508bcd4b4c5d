package gui

import (
	"fmt"
	"io"
	"runtime"
)

// entryOverhead approximates the fixed per-image bookkeeping: the Image
// and Slot structs plus the library's pointer to them.
const entryOverhead = 96

// Stats is a snapshot of what the gallery holds in memory.
type Stats struct {
	ScreenBytes   int
	Images        int
	Loaded        int
	DecodedBytes  int
	MetadataBytes int
	Scheduled     int64
	Captions      int

	// Resident is the number of tiles tracked against MaxLoaded.
	Resident int

	// Queued, Workers and Idle describe the decode pool. They stay zero
	// for executors that do not report them.
	Queued  int
	Workers int
	Idle    int
}

// poolStats is implemented by executors that can report their backlog,
// such as parallel.Pool.
type poolStats interface {
	Pending() int
	Workers() int
	Idle() int
}

// Stats returns a memory snapshot.
func (s *State) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats()
}

func (s *State) stats() Stats {
	st := Stats{
		ScreenBytes: s.screen.Bytes(),
		Scheduled:   s.loader.Scheduled(),
		Resident:    s.resident.Len(),
	}
	if p, ok := s.exec.(poolStats); ok {
		st.Queued = p.Pending()
		st.Workers = p.Workers()
		st.Idle = p.Idle()
	}
	for _, img := range s.library.Images() {
		st.Images++
		if img.Loaded() {
			st.Loaded++
		}
		st.DecodedBytes += img.Bytes()
		st.MetadataBytes += entryOverhead + len(img.Path()) + len(img.Name())
	}
	if s.captions != nil {
		st.Captions = s.captions.Cached()
	}
	return st
}

// WriteReport writes a human readable memory report for s to w.
func WriteReport(w io.Writer, s *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeReport(w)
}

func (s *State) writeReport(w io.Writer) error {
	st := s.stats()
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	_, err := fmt.Fprintf(w, `memory report
  screen buffer:   %s
  images:          %d loaded of %d
  decoded pixels:  %s
  image metadata:  %s
  decodes started: %d
  decodes queued:  %d (%d workers, %d idle)
  resident tiles:  %d
  cached captions: %d
  heap in use:     %s
  heap reserved:   %s
  gc cycles:       %d
`,
		kib(uint64(st.ScreenBytes)),
		st.Loaded, st.Images,
		kib(uint64(st.DecodedBytes)),
		kib(uint64(st.MetadataBytes)),
		st.Scheduled,
		st.Queued, st.Workers, st.Idle,
		st.Resident,
		st.Captions,
		kib(ms.HeapInuse),
		kib(ms.HeapSys),
		ms.NumGC,
	)
	return err
}

func kib(n uint64) string {
	return fmt.Sprintf("%.1f KiB", float64(n)/1024)
}
