// Package fragment contains the pure logic for episode and category
// fragment files: the ordered JSON object they are decoded into, filename
// ordering, filename allocation for split, the title migration and the
// field audit. Nothing here touches the filesystem.
package fragment
