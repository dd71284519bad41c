package parameter

// Event queue capacity. The ring index is computed by masking, so the
// size must be a power of two. One frame emits at most a few events per
// tab (animation completions, sound and close requests); 256 slots hold
// a full relocation cascade on any plausible tab count with room to
// spare
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
