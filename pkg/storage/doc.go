// Package storage persists validated uploads.
//
// Two backends implement [Storage]: [S3Storage] for S3-compatible buckets
// and [DiskStorage] for a local directory. Both generate keys of the form
// {tenant}/{prefix}/{uuid}{ext}, with the extension taken from the sniffed
// content type.
//
// # Basic Usage
//
//	var cfg storage.DiskConfig
//	if err := env.Parse(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	store, err := storage.NewDisk(cfg)
//
//	form, err := def.BindRequest(r)
//	if err != nil {
//		return err
//	}
//	defer form.Cleanup()
//	if data, ok := form.CleanedData(); ok {
//		infos, err := storage.PutUploads(ctx, store, storage.Uploads(data), 4,
//			storage.WithPrefix("attachments"),
//		)
//		// ...
//	}
//
// # S3
//
//	store, err := storage.NewS3(storage.Config{
//		Bucket:    "uploads",
//		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
//		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
//		Endpoint:  "http://localhost:9000",
//		PathStyle: true,
//	})
//
//	url, err := store.URL(ctx, info.Key, storage.WithExpiry(time.Hour))
//
// # Errors
//
// Failures wrap the package sentinels: ErrNotFound, ErrAccessDenied,
// ErrUploadFailed, ErrDeleteFailed, ErrPresignFailed, ErrInvalidKey,
// ErrFileTooLarge and ErrEmptyFile. Match them with errors.Is.
package storage
