package oicp

import "strings"

func stripElement(doc, element string) string {
	return strings.Replace(doc, element, "", 1)
}

func replaceElement(doc, element, with string) string {
	return strings.Replace(doc, element, with, 1)
}
