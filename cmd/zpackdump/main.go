// zpackdump prints the envelope and top-level data header of a serialized
// file and recomputes its checksum.
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	zpacker "github.com/The-Sword-of-Constantine/zpacker"
)

var checksums = map[string]zpacker.Checksum{
	"none":   zpacker.ChecksumNone,
	"crc8":   zpacker.ChecksumCRC8,
	"crc16":  zpacker.ChecksumCRC16,
	"crc32":  zpacker.ChecksumCRC32,
	"blake3": zpacker.ChecksumBLAKE3,
}

func main() {
	checksumName := flag.StringP("checksum", "c", "none",
		"checksum the file was sealed with (none, crc8, crc16, crc32, blake3)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: zpackdump [-c checksum] <file>\n")
		os.Exit(2)
	}

	sum, ok := checksums[*checksumName]
	if !ok {
		fmt.Fprintf(os.Stderr, "zpackdump: unknown checksum %q\n", *checksumName)
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "zpackdump: %v\n", err)
		os.Exit(1)
	}

	envelope, payload, err := zpacker.Inspect(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zpackdump: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("version:  %d.%d (0x%04x)\n", envelope.Major(), envelope.Minor(), envelope.Version)
	fmt.Printf("length:   %d bytes\n", envelope.Length)
	fmt.Printf("crc:      0x%08x\n", envelope.CRC)

	computed := sum(payload)
	if computed == envelope.CRC {
		fmt.Printf("checksum: ok (%s)\n", *checksumName)
	} else {
		fmt.Printf("checksum: MISMATCH (computed 0x%08x with %s)\n", computed, *checksumName)
	}

	if err := zpacker.Verify(data, sum); err != nil {
		fmt.Printf("verify:   %v\n", err)
	} else {
		fmt.Printf("verify:   ok\n")
	}

	if h, ok := zpacker.ParseHeader(payload); ok {
		fmt.Printf("payload:  main=%s sub=%s length=%d\n", h.MainType(), h.SubType(), h.Length)
	} else {
		fmt.Printf("payload:  no data header (bare scalar or empty)\n")
	}
}
