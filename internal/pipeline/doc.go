// Package pipeline implements the markdown-to-HTML conversion pipeline.
//
// Conversion flows one way:
//   - Preprocess normalizes line endings
//   - SplitBlocks cuts the document on blank lines
//   - Classify assigns each block a BlockType
//   - RenderBlock builds an htmlnode subtree per block, running Tokenize
//     over headings, quotes and paragraphs
//   - ConvertDocument wraps every subtree in one div
//
// ExtractTitle, FillTemplate and RewriteMarkdownLinks work on the serialized
// output and are used when assembling full pages.
//
// Every function is pure and safe for concurrent use; documents can be
// converted in parallel without coordination.
package pipeline
