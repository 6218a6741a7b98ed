package cellml

import "encoding/xml"

func decodeXML(encoded []byte, dest interface{}) error {
	return xml.Unmarshal(encoded, dest)
}
