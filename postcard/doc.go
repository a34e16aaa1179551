// Package postcard writes and checks the text of Indian postcards: the
// letter template itself, six-digit pincodes, aligned "label: value" fields,
// state codes at the end of an address, and a vowel count for the message.
//
// Functions accept loosely typed input; anything that is not a string where
// a string is expected produces the empty or false result rather than an
// error.
package postcard
