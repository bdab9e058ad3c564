package unroll

//go:generate go run github.com/lguimbarda/unrolled/cmd/unrollgen -config unrollgen.yaml
