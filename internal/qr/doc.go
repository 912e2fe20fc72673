// Package qr builds and reads the payload carried by a lecture's QR code.
//
// The payload is a JSON document identifying the lecture and copying its
// window at generation time. [Encode] produces it, [Render] turns it into a
// PNG data URL suitable for an <img> tag, and [Decode] parses a string a
// student client read back from the image.
package qr
