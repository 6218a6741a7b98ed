package document

import (
	"encoding/xml"
	"fmt"
	"sync/atomic"
)

var counter int32

func generateAnonymousName() string {
	return fmt.Sprintf("anonymous-%d", atomic.AddInt32(&counter, 1))
}

func decodeXML(encoded []byte, dest interface{}) error {
	return xml.Unmarshal(encoded, dest)
}
