package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), 0)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	put, err := store.Put(ctx, Asset{
		Filename:    "notes.txt",
		ContentType: "text/plain",
	}, strings.NewReader("hello assets"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if put.ID == "" {
		t.Fatal("no ID assigned")
	}
	if put.Size != int64(len("hello assets")) {
		t.Errorf("Size = %d", put.Size)
	}

	got, body, err := store.Open(ctx, put.ID)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer body.Close()
	data, _ := io.ReadAll(body)

	if string(data) != "hello assets" {
		t.Errorf("content = %q", data)
	}
	if got.Filename != "notes.txt" || got.ContentType != "text/plain" {
		t.Errorf("metadata = %+v", got)
	}
}

func TestDiskStoreSizeLimit(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), 8)
	if err != nil {
		t.Fatal(err)
	}

	_, err = store.Put(context.Background(), Asset{Filename: "big"},
		strings.NewReader("way past the limit"))
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("error = %v, want ErrTooLarge", err)
	}
}

func TestDiskStoreDelete(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), 0)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	put, err := store.Put(ctx, Asset{Filename: "x"}, strings.NewReader("x"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, put.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, _, err := store.Open(ctx, put.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Open after delete = %v, want ErrNotFound", err)
	}
	// Deleting again is a no-op.
	if err := store.Delete(ctx, put.ID); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestDiskStoreRejectsTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), 0)
	if err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{"../etc/passwd", "a/b", `a\b`, ""} {
		if _, _, err := store.Open(context.Background(), id); !errors.Is(err, ErrNotFound) {
			t.Errorf("Open(%q) = %v, want ErrNotFound", id, err)
		}
	}
}

func uploadRequest(t *testing.T, url, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte(content))
	mw.Close()

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandlerUploadAndServe(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), 0)
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(Handler(store, 1<<20))
	defer ts.Close()

	resp, err := http.DefaultClient.Do(uploadRequest(t, ts.URL+"/", "pic.png", "pngbytes"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("upload status = %d", resp.StatusCode)
	}
	var a Asset
	if err := json.NewDecoder(resp.Body).Decode(&a); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if a.ID == "" || a.Filename != "pic.png" {
		t.Fatalf("asset = %+v", a)
	}

	get, err := http.Get(ts.URL + "/" + a.ID)
	if err != nil {
		t.Fatal(err)
	}
	defer get.Body.Close()
	data, _ := io.ReadAll(get.Body)
	if string(data) != "pngbytes" {
		t.Errorf("served content = %q", data)
	}
}

func TestHandlerMissingAsset(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), 0)
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(Handler(store, 1<<20))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/no-such-id")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestHandlerDelete(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), 0)
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(Handler(store, 1<<20))
	defer ts.Close()

	put, err := store.Put(context.Background(), Asset{Filename: "x"}, strings.NewReader("x"))
	if err != nil {
		t.Fatal(err)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/"+put.ID, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
}

// fakeS3 implements s3API in memory.
type fakeS3 struct {
	objects map[string]fakeObject
}

type fakeObject struct {
	data        []byte
	contentType string
	metadata    map[string]string
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	ct := ""
	if in.ContentType != nil {
		ct = *in.ContentType
	}
	f.objects[*in.Key] = fakeObject{data: data, contentType: ct, metadata: in.Metadata}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	obj, ok := f.objects[*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	size := int64(len(obj.data))
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(obj.data)),
		ContentType:   &obj.contentType,
		ContentLength: &size,
		Metadata:      obj.metadata,
	}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3StoreRoundTrip(t *testing.T) {
	fake := &fakeS3{objects: make(map[string]fakeObject)}
	store := &S3Store{client: fake, bucket: "b", prefix: "assets/"}
	ctx := context.Background()

	put, err := store.Put(ctx, Asset{
		Filename:    "doc.pdf",
		ContentType: "application/pdf",
	}, strings.NewReader("pdfbytes"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, ok := fake.objects["assets/"+put.ID]; !ok {
		t.Fatal("object not stored under prefix")
	}

	got, body, err := store.Open(ctx, put.ID)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer body.Close()
	data, _ := io.ReadAll(body)

	if string(data) != "pdfbytes" {
		t.Errorf("content = %q", data)
	}
	if got.Filename != "doc.pdf" || got.ContentType != "application/pdf" {
		t.Errorf("metadata = %+v", got)
	}

	if err := store.Delete(ctx, put.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, _, err := store.Open(ctx, put.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Open after delete = %v, want ErrNotFound", err)
	}
}

func TestS3StoreSizeLimit(t *testing.T) {
	fake := &fakeS3{objects: make(map[string]fakeObject)}
	store := &S3Store{client: fake, bucket: "b", maxSize: 4}

	_, err := store.Put(context.Background(), Asset{}, strings.NewReader("too big"))
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("error = %v, want ErrTooLarge", err)
	}
}
