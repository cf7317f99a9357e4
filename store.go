package hashwires

import (
	"os"
	"syscall"

	"github.com/bwesterb/byteswriter"
	"github.com/hashicorp/go-multierror"
	"github.com/nightlyone/lockfile"
)

const (
	storeMagic       = "HWSR"
	storeFileVersion = 1
	storeRecordLen   = 4 + 1 + 1 + 2 + 32 + 32 // magic,version,baseTag,maxBits,seed,value
)

// SecretStore is a file-backed, single-writer-at-a-time container for
// one Secret plus the Params it was generated for, memory-mapped for
// zero-copy reads after creation. A sibling lock file (path+".lock")
// serializes access across processes.
type SecretStore struct {
	path string
	lock lockfile.Lockfile
	file *os.File
	data []byte
}

// CreateSecretStore writes secret and params to a new file at path,
// taking the advisory lock for the lifetime of the returned store.
func CreateSecretStore(path string, secret *Secret, params Params) (*SecretStore, Error) {
	tag, err := params.baseTagByte()
	if err != nil {
		return nil, err
	}

	lock, lerr := lockfile.New(path + ".lock")
	if lerr != nil {
		return nil, wrapError(HashFailure, lerr, "building lock file handle")
	}
	if lerr := lock.TryLock(); lerr != nil {
		return nil, wrapError(HashFailure, lerr, "locking secret store %q", path)
	}

	f, ferr := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if ferr != nil {
		_ = lock.Unlock()
		return nil, wrapError(HashFailure, ferr, "creating secret store %q", path)
	}
	if terr := f.Truncate(storeRecordLen); terr != nil {
		_ = f.Close()
		_ = lock.Unlock()
		return nil, wrapError(HashFailure, terr, "sizing secret store %q", path)
	}

	data, merr := syscall.Mmap(int(f.Fd()), 0, storeRecordLen, syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if merr != nil {
		_ = f.Close()
		_ = lock.Unlock()
		return nil, wrapError(HashFailure, merr, "mmap secret store %q", path)
	}

	bw := byteswriter.New(data)
	_, _ = bw.Write([]byte(storeMagic))
	_, _ = bw.Write([]byte{storeFileVersion, tag})
	maxBits := make([]byte, 2)
	encodeUint64Into(uint64(params.MaxBits), maxBits)
	_, _ = bw.Write(maxBits)
	_, _ = bw.Write(secret.seed[:])
	valueBytes := secret.v.Bytes32()
	_, _ = bw.Write(valueBytes[:])

	return &SecretStore{path: path, lock: lock, file: f, data: data}, nil
}

// OpenSecretStore opens and locks an existing store written by
// CreateSecretStore.
func OpenSecretStore(path string) (*SecretStore, Error) {
	lock, lerr := lockfile.New(path + ".lock")
	if lerr != nil {
		return nil, wrapError(HashFailure, lerr, "building lock file handle")
	}
	// The lock file records a PID, so TryLock alone would let a second
	// store in this same process take over a lock that is still held.
	if owner, oerr := lock.GetOwner(); oerr == nil && owner.Pid == os.Getpid() {
		return nil, wrapError(HashFailure, lockfile.ErrBusy, "locking secret store %q", path)
	}
	if lerr := lock.TryLock(); lerr != nil {
		return nil, wrapError(HashFailure, lerr, "locking secret store %q", path)
	}

	f, ferr := os.OpenFile(path, os.O_RDWR, 0600)
	if ferr != nil {
		_ = lock.Unlock()
		return nil, wrapError(HashFailure, ferr, "opening secret store %q", path)
	}

	data, merr := syscall.Mmap(int(f.Fd()), 0, storeRecordLen, syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if merr != nil {
		_ = f.Close()
		_ = lock.Unlock()
		return nil, wrapError(HashFailure, merr, "mmap secret store %q", path)
	}
	if len(data) < storeRecordLen || string(data[:4]) != storeMagic {
		_ = syscall.Munmap(data)
		_ = f.Close()
		_ = lock.Unlock()
		return nil, newError(MalformedCommitment, "%q is not a secret store file", path)
	}

	return &SecretStore{path: path, lock: lock, file: f, data: data}, nil
}

// Secret decodes the stored Secret and the Params it was generated
// under.
func (s *SecretStore) Secret() (*Secret, Params, Error) {
	if string(s.data[:4]) != storeMagic {
		return nil, Params{}, newError(MalformedCommitment, "corrupt secret store header")
	}
	base, ok := tagToBase[s.data[5]]
	if !ok {
		return nil, Params{}, newError(UnsupportedBase, "unknown base tag %d in store", s.data[5])
	}
	maxBits := uint16(beUint16(s.data[6:8]))
	params := Params{Base: base, MaxBits: maxBits}
	if err := params.validate(); err != nil {
		return nil, Params{}, err
	}
	seed := s.data[8:40]
	value := new(bigNum).SetBytes32((*[32]byte)(s.data[40:72]))
	secret, err := Gen(seed, value)
	if err != nil {
		return nil, Params{}, err
	}
	return secret, params, nil
}

// Close unmaps the file, closes its descriptor, and releases the
// lock, aggregating any failures instead of stopping at the first one.
func (s *SecretStore) Close() Error {
	var result *multierror.Error
	if s.data != nil {
		if err := syscall.Munmap(s.data); err != nil {
			result = multierror.Append(result, err)
		}
		s.data = nil
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			result = multierror.Append(result, err)
		}
		s.file = nil
	}
	if err := s.lock.Unlock(); err != nil {
		result = multierror.Append(result, err)
	}
	if result == nil {
		return nil
	}
	return wrapError(HashFailure, result.ErrorOrNil(), "closing secret store %q", s.path)
}
