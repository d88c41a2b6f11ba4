package classfile

import "fmt"

// decodeInterfaces reads count constant pool indices. With tagByte set, each
// index is preceded by one discarded byte, the layout written by some older
// dump tools.
func decodeInterfaces(r *reader, count uint16, tagByte bool) ([]uint16, error) {
	interfaces := make([]uint16, count)
	for i := range interfaces {
		if tagByte {
			r.readU1()
		}
		interfaces[i] = r.readU2()
		if r.err != nil {
			return nil, fmt.Errorf("interface %d: %w", i, r.err)
		}
	}
	return interfaces, nil
}
