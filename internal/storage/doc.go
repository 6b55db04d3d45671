// Package storage provides the backends manifests are written through.
//
// Every backend implements Store, the directory + file port the generator
// depends on:
//
//	store := storage.NewOS(projectRoot)
//	gen := manifest.New(store)
//
// Object storage backends (S3, MinIO) treat MkdirAll as a no-op and map
// file names to object keys under a prefix. Multi mirrors writes to several
// backends in order.
package storage
