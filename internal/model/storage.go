package model

import "context"

// MediaStorage uploads a local temporary file to the object store and
// returns its public URL. The caller owning the local file is responsible
// for removing it afterwards, whether or not the upload succeeded.
type MediaStorage interface {
	UploadFile(ctx context.Context, localPath string) (string, error)
}
