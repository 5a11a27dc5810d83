// Package analyze provides package loading and discovery of marked unions.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find type
// declarations carrying the //unionfrom:generate marker and, for unions, the
// alternatives that implement them.
//
// Key types:
//   - Loader: loads packages with the generator's build tag set
//   - Target: a marked declaration ready for derive.Transform
//   - PackageInfo: the targets of one package
package analyze
