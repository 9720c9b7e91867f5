// Package wire compiles .wire wireframe source into a document AST.
//
// The pipeline consists of:
//   - [Lexer]: tokenizes indentation-structured .wire source into a token stream
//   - [Parser]: builds a [Document] AST from the token stream
//
// [Format] is the inverse: it reprints a document in canonical source form.
//
// Both stages are total: malformed input produces positioned errors in an
// [ErrorList] and a best-effort result, never a panic or an aborted scan.
package wire
