package deflate

import "errors"

// ErrInvalidDeflate is the single error kind returned for any malformed or
// truncated compressed stream: premature end of input, a reserved block
// type, an over-subscribed or incomplete Huffman code table, a malformed
// code-length repeat sequence, a stored-block LEN/NLEN mismatch, or a
// back-reference distance of zero or one that reaches before the start of
// the output. Callers distinguish the specific cause, if they care, with
// the wrapped detail string; errors.Is(err, ErrInvalidDeflate) is always
// true for any decode failure.
var ErrInvalidDeflate = errors.New("deflate: invalid compressed stream")
