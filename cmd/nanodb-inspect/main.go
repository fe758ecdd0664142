// Command nanodb-inspect dumps the block structure of a nanodb index
// file: a depth-first walk from the root printing each block's address,
// leaf/interior flag, parent, key count, and minimum key, followed by
// the contents of its free-list sidecar.
//
// It never writes the index file. The free-list sidecar is read by
// popping every entry and pushing the entries back in their original
// order, so that file is rewritten in place (and created empty if it
// does not exist). Both files are accessed directly through
// internal/block and internal/freelist rather than through a live Tree,
// so a malformed file can be inspected without first surviving
// Tree.Open's invariants.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/warrenspe/nanodb/internal/block"
	"github.com/warrenspe/nanodb/internal/freelist"
	"github.com/warrenspe/nanodb/internal/types"
)

// CLI is the nanodb-inspect command line, parsed by kong.
type CLI struct {
	Path      string `arg:"" help:"Path to the index file." type:"existingfile"`
	KeyType   string `help:"Key type: int1/int2/int4/int8, uint1/uint2/uint4/uint8, float4/float8, charN." default:"int4"`
	BlockSize int    `help:"Index block size in bytes." default:"4096"`
	FreeList  string `help:"Path to the free-list sidecar (defaults to <path> with a trailing .idx replaced by .free, otherwise <path>.free)."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("nanodb-inspect"),
		kong.Description("Dump the block structure of a nanodb index file."),
	)

	if err := run(cli); err != nil {
		log.Fatalf("nanodb-inspect: %v", err)
	}
}

func run(cli CLI) error {
	keyType, err := parseKeyType(cli.KeyType)
	if err != nil {
		return err
	}

	//nolint:gosec // G304: path is an explicit CLI argument for a diagnostic tool
	f, err := os.Open(cli.Path)
	if err != nil {
		return fmt.Errorf("open index file: %w", err)
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat index file: %w", err)
	}

	fmt.Printf("%s (%d bytes, blockSize=%d, keyType=%s)\n", cli.Path, fi.Size(), cli.BlockSize, keyType)
	if err := walk(f, keyType, cli.BlockSize, 0, 0); err != nil {
		return fmt.Errorf("walk tree: %w", err)
	}

	freePath := cli.FreeList
	if freePath == "" {
		freePath = cli.Path + ".free"
		if strings.HasSuffix(cli.Path, ".idx") {
			freePath = strings.TrimSuffix(cli.Path, ".idx") + ".free"
		}
	}
	if err := dumpFreeList(freePath); err != nil {
		fmt.Printf("free list %s: %v\n", freePath, err)
	}

	return nil
}

func walk(f *os.File, keyType types.Type, blockSize int, address uint64, depth int) error {
	buf := make([]byte, blockSize)
	n, err := f.ReadAt(buf, int64(address))
	if err != nil && err != io.EOF {
		return fmt.Errorf("read block at %d: %w", address, err)
	}
	if n != blockSize {
		return fmt.Errorf("read block at %d: short read (%d of %d bytes)", address, n, blockSize)
	}

	b, err := block.Decode(buf, blockSize, keyType, address)
	if err != nil {
		return fmt.Errorf("decode block at %d: %w", address, err)
	}

	kind := "interior"
	if b.IsLeaf() {
		kind = "leaf"
	}

	minKey := "-"
	if len(b.Keys) > 0 {
		minKey = fmt.Sprintf("%v", b.Keys[0])
	}

	fmt.Printf("%saddr=%d kind=%-8s parent=%d numKeys=%d minKey=%s\n",
		strings.Repeat("  ", depth), address, kind, b.Parent, len(b.Keys), minKey)

	if !b.IsLeaf() {
		for _, child := range b.Addresses {
			if err := walk(f, keyType, blockSize, child, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}

func dumpFreeList(path string) error {
	fl, err := freelist.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = fl.Close() }()

	var addrs []uint64
	for {
		addr, ok, err := fl.Pop()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		addrs = append(addrs, addr)
	}

	// addrs was collected top-of-stack first; push back in reverse to
	// restore the original order.
	for i := len(addrs) - 1; i >= 0; i-- {
		if err := fl.Push(addrs[i]); err != nil {
			return err
		}
	}

	fmt.Printf("free list: %d entries %v\n", len(addrs), addrs)
	return nil
}

func parseKeyType(name string) (types.Type, error) {
	name = strings.ToLower(name)
	switch {
	case strings.HasPrefix(name, "int"):
		n, err := strconv.Atoi(strings.TrimPrefix(name, "int"))
		if err != nil {
			return nil, fmt.Errorf("bad int width %q: %w", name, err)
		}
		t, err := types.NewInt(n)
		if err != nil {
			return nil, err
		}
		return t, nil
	case strings.HasPrefix(name, "uint"):
		n, err := strconv.Atoi(strings.TrimPrefix(name, "uint"))
		if err != nil {
			return nil, fmt.Errorf("bad uint width %q: %w", name, err)
		}
		t, err := types.NewUint(n)
		if err != nil {
			return nil, err
		}
		return t, nil
	case strings.HasPrefix(name, "float"):
		n, err := strconv.Atoi(strings.TrimPrefix(name, "float"))
		if err != nil {
			return nil, fmt.Errorf("bad float width %q: %w", name, err)
		}
		t, err := types.NewFloat(n)
		if err != nil {
			return nil, err
		}
		return t, nil
	case strings.HasPrefix(name, "char"):
		n, err := strconv.Atoi(strings.TrimPrefix(name, "char"))
		if err != nil {
			return nil, fmt.Errorf("bad char width %q: %w", name, err)
		}
		t, err := types.NewChar(n)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unrecognized key type %q", name)
	}
}
