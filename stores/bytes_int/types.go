//go:generate fs2-generic --output=wrapper.go --package-name=bytes_int bptree --key-type=[]byte --key-serializer=Identity --key-deserializer=Identity --value-type=int32 --value-size=4 --value-empty=0 --value-serializer=SerializeInt32 --value-deserializer=DeserializeInt32
package bytes_int

import (
	"encoding/binary"
)

func Identity(bytes []byte) []byte {
	return bytes
}

func SerializeInt32(i int32) []byte {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, uint32(i))
	return bytes
}

func DeserializeInt32(bytes []byte) int32 {
	return int32(binary.BigEndian.Uint32(bytes))
}
