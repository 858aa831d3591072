package filestorage

import "mime/multipart"

// FileStorage is the storage boundary: save an upload under an opaque id,
// derive a public view URL from that id, delete by id.
type FileStorage interface {
	// SaveFile stores an uploaded file and returns its opaque file id
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath stores the file under a subdirectory
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// ViewURL derives the public URL for a stored file id
	ViewURL(fileID string) string

	// DeleteFile removes a stored file; deleting a missing file is not an error
	DeleteFile(fileID string) error
}
